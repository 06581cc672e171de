package models

// IndexEnvelope is the response wrapper of the manifest index endpoint.
type IndexEnvelope struct {
	Response    *Index `json:"Response"`
	ErrorCode   int    `json:"ErrorCode"`
	ErrorStatus string `json:"ErrorStatus"`
	Message     string `json:"Message"`
}

// Index names the current version and where each locale's tables live.
type Index struct {
	Version      string                       `json:"version"`
	ContentPaths map[string]map[string]string `json:"jsonWorldComponentContentPaths"`
}

// ContentPath returns the path of table for locale, or "" if the index does not list it.
func (i *Index) ContentPath(locale, table string) string {
	if i == nil {
		return ""
	}
	tables, ok := i.ContentPaths[locale]
	if !ok {
		return ""
	}
	return tables[table]
}
