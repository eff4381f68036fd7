package entity

// Data represents one unit of annotatable work. The integer id doubles as the
// total order used to map items into feature-matrix rows (id minus the
// project's minimum id).
type Data struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	Text      string `json:"text"`
}
