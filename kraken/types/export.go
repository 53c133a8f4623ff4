package types

// ExportReport is the processing status of one requested export.
type ExportReport struct {
	ID          string `json:"id"`
	Descr       string `json:"descr"`
	Format      string `json:"format"`
	Report      string `json:"report"`
	Status      string `json:"status"`
	Fields      string `json:"fields"`
	CreatedTm   string `json:"createdtm"`
	StartTm     string `json:"starttm"`
	CompletedTm string `json:"completedtm"`
	DataStartTm string `json:"datastarttm"`
	DataEndTm   string `json:"dataendtm"`
}

// RemoveExportResult confirms deletion or cancellation of a report.
type RemoveExportResult struct {
	Delete bool `json:"delete"`
	Cancel bool `json:"cancel"`
}
