package types

// NormalRecord is the flattened per-entry row used for tabular export. All
// fields are strings so a row renders identically in CSV and JSON and an
// absent value is always the empty string rather than a zero that reads as
// data (a real size of 0 bytes still renders as "0" because the link record
// was present).
type NormalRecord struct {
	AppID      string `json:"app_id"`
	AppName    string `json:"app_name"`
	Type       string `json:"type"`
	SourcePath string `json:"jumplist_file_path"`

	Order       string `json:"order"`
	Category    string `json:"category"`
	Pinned      string `json:"pinned"`
	AccessCount string `json:"access_count"`
	LastUsed    string `json:"last_used"`
	Path        string `json:"path"`

	TargetPath   string `json:"target_full_path"`
	Arguments    string `json:"command_line_arguments"`
	Name         string `json:"name_string"`
	ModTime      string `json:"target_modification_time"`
	AccessTime   string `json:"target_access_time"`
	CreationTime string `json:"target_creation_time"`
	Size         string `json:"target_size"`
	Hostname     string `json:"target_hostname"`

	DecodeError string `json:"decode_error"`
}

// NormalHeader returns the column names in NormalRecord field order, for
// CSV headers.
func NormalHeader() []string {
	return []string{
		"app_id", "app_name", "type", "jumplist_file_path",
		"order", "category", "pinned", "access_count", "last_used", "path",
		"target_full_path", "command_line_arguments", "name_string",
		"target_modification_time", "target_access_time",
		"target_creation_time", "target_size", "target_hostname",
		"decode_error",
	}
}

// Row returns the record's values in NormalHeader order.
func (r NormalRecord) Row() []string {
	return []string{
		r.AppID, r.AppName, r.Type, r.SourcePath,
		r.Order, r.Category, r.Pinned, r.AccessCount, r.LastUsed, r.Path,
		r.TargetPath, r.Arguments, r.Name,
		r.ModTime, r.AccessTime, r.CreationTime, r.Size, r.Hostname,
		r.DecodeError,
	}
}
