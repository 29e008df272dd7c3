package domain

// TableCount é a contagem de linhas de uma tabela
type TableCount struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// ColumnRef identifica uma coluna do schema public
type ColumnRef struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

type DatabaseInfo struct {
	Version  string `json:"version"`
	Database string `json:"database"`
	User     string `json:"user"`
}

// VerificationReport é o resultado do verify-db
type VerificationReport struct {
	Info             DatabaseInfo `json:"info"`
	MissingTables    []string     `json:"missing_tables"`
	Counts           []TableCount `json:"counts"`
	DuplicateSummary int64        `json:"duplicate_summaries"`
	NaiveColumns     []ColumnRef  `json:"naive_columns"`
	AppliedVersions  []string     `json:"applied_versions"`
}

func (r *VerificationReport) Healthy() bool {
	return len(r.MissingTables) == 0 && r.DuplicateSummary == 0 && len(r.NaiveColumns) == 0
}

// ResetResult resume uma limpeza do banco
type ResetResult struct {
	Deleted      []TableCount `json:"deleted"`
	UsersRemoved int64        `json:"users_removed"`
	Reseeded     bool         `json:"reseeded"`
}
