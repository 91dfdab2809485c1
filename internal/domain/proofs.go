package domain

// IAVProof is the result of the five-question authenticity interview.
type IAVProof struct {
	Passed      bool   `json:"passed" yaml:"passed"`
	PassedCount int    `json:"passed_count" yaml:"passed_count"`
	FailedCount int    `json:"failed_count" yaml:"failed_count"`
	Detail      string `json:"detail,omitempty" yaml:"detail"`
}

// BLDSProof carries the behavioral-likelihood-of-deception score (0–5)
// against its configured minimum.
type BLDSProof struct {
	Score   float64 `json:"score" yaml:"score"`
	Minimum float64 `json:"minimum" yaml:"minimum"`
	Passed  bool    `json:"passed" yaml:"passed"`
}

// DataSourceProof reports how many data sources could not be traced back to
// a verifiable origin.
type DataSourceProof struct {
	Untraced int  `json:"untraced" yaml:"untraced"`
	Passed   bool `json:"passed" yaml:"passed"`
}

// AuthenticityProofs groups the three externally supplied proofs. A nil
// pointer means that proof was not provided for this run; the collector
// turns that into a fail-closed not-provided artifact rather than guessing.
type AuthenticityProofs struct {
	IAV        *IAVProof        `json:"iav,omitempty" yaml:"iav"`
	BLDS       *BLDSProof       `json:"blds,omitempty" yaml:"blds"`
	DataSource *DataSourceProof `json:"datasource,omitempty" yaml:"datasource"`
}
