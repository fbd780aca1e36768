package project

type CreateProjectRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	Note        string `form:"note" json:"note"`
	Duration    string `form:"duration" json:"duration"`
}

// UpdateProjectRequest replaces provided scalar fields wholesale; absent
// fields keep their prior value.
type UpdateProjectRequest struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
	Note        *string `form:"note" json:"note"`
	Duration    *string `form:"duration" json:"duration"`
}

type RemoveImageRequest struct {
	Image string `json:"image" binding:"required"`
}
