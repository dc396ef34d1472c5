package dto

// SaveCourseRequest is the body of POST /api/courses and PUT /api/courses/:id.
// Title and description are required; the optional fields are kept verbatim
// when present and left NULL otherwise.
type SaveCourseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}
