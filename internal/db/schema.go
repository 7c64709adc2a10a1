package db

// SchemaSQL is the complete schema for fresh journey databases.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if repository code references a column that
// doesn't exist here, tests fail immediately with "no such column".
//
// Stage completion is a fixed enumeration of nine columns (stage_0_completed
// through stage_8_completed). Column names are never built from input.
const SchemaSQL = `
-- Sessions (bounded units of tracked work)
CREATE TABLE IF NOT EXISTS sessions (
	session_id TEXT PRIMARY KEY,
	project TEXT NOT NULL,
	feature_name TEXT,
	initial_request TEXT,
	started_at INTEGER NOT NULL,
	ended_at INTEGER,
	status TEXT NOT NULL CHECK(status IN ('active', 'completed', 'abandoned')) DEFAULT 'active',
	summary TEXT,
	total_steps INTEGER NOT NULL DEFAULT 0,
	total_agents_spawned INTEGER NOT NULL DEFAULT 0
);

-- Steps (append-only, numbered 1..k per session)
CREATE TABLE IF NOT EXISTS steps (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	step_number INTEGER NOT NULL,
	step_type TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	agent_name TEXT,
	agent_model TEXT,
	pipeline_stage INTEGER,
	action TEXT NOT NULL,
	target TEXT,
	result TEXT,
	files_created TEXT,
	files_modified TEXT,
	files_deleted TEXT,
	context TEXT,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id),
	UNIQUE(session_id, step_number)
);

-- Features (tracked work progressing through the 9-stage pipeline)
CREATE TABLE IF NOT EXISTS features (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	feature_name TEXT NOT NULL UNIQUE,
	project TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	current_stage INTEGER NOT NULL DEFAULT 0 CHECK(current_stage BETWEEN 0 AND 8),
	status TEXT NOT NULL DEFAULT 'in_progress',
	description TEXT,
	stage_0_completed INTEGER,
	stage_1_completed INTEGER,
	stage_2_completed INTEGER,
	stage_3_completed INTEGER,
	stage_4_completed INTEGER,
	stage_5_completed INTEGER,
	stage_6_completed INTEGER,
	stage_7_completed INTEGER,
	stage_8_completed INTEGER
);

-- File changes (append-only)
CREATE TABLE IF NOT EXISTS file_changes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	step_id INTEGER,
	timestamp INTEGER NOT NULL,
	file_path TEXT NOT NULL,
	change_type TEXT NOT NULL,
	old_path TEXT,
	description TEXT,
	lines_added INTEGER,
	lines_removed INTEGER,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id),
	FOREIGN KEY (step_id) REFERENCES steps(id)
);

-- Decisions (append-only)
CREATE TABLE IF NOT EXISTS decisions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	step_id INTEGER,
	feature_name TEXT,
	timestamp INTEGER NOT NULL,
	decision_type TEXT NOT NULL DEFAULT 'implementation',
	question TEXT NOT NULL,
	choice TEXT NOT NULL,
	alternatives TEXT,
	rationale TEXT,
	impact TEXT,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id),
	FOREIGN KEY (step_id) REFERENCES steps(id),
	FOREIGN KEY (feature_name) REFERENCES features(feature_name)
);

CREATE INDEX IF NOT EXISTS idx_sessions_project ON sessions(project, started_at);
CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status, started_at);
CREATE INDEX IF NOT EXISTS idx_steps_session ON steps(session_id, step_number);
CREATE INDEX IF NOT EXISTS idx_file_changes_session ON file_changes(session_id);
CREATE INDEX IF NOT EXISTS idx_file_changes_time ON file_changes(timestamp);
CREATE INDEX IF NOT EXISTS idx_decisions_session ON decisions(session_id, timestamp);
CREATE INDEX IF NOT EXISTS idx_decisions_feature ON decisions(feature_name);

-- Full-text search over step free-text fields
CREATE VIRTUAL TABLE IF NOT EXISTS steps_fts USING fts5(
	action,
	target,
	result,
	context,
	content=steps,
	content_rowid=id
);

-- Steps are append-only, so a single insert trigger keeps the index
-- transactionally consistent with the base table.
CREATE TRIGGER IF NOT EXISTS steps_ai AFTER INSERT ON steps BEGIN
	INSERT INTO steps_fts(rowid, action, target, result, context)
	VALUES (new.id, new.action, new.target, new.result, new.context);
END;

-- Full-text search over decision free-text fields
CREATE VIRTUAL TABLE IF NOT EXISTS decisions_fts USING fts5(
	question,
	choice,
	rationale,
	content=decisions,
	content_rowid=id
);

CREATE TRIGGER IF NOT EXISTS decisions_ai AFTER INSERT ON decisions BEGIN
	INSERT INTO decisions_fts(rowid, question, choice, rationale)
	VALUES (new.id, new.question, new.choice, new.rationale);
END;
`

// GetSchemaSQL returns the authoritative schema for use in tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
