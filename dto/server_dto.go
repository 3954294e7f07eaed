package dto

type CreateServerDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	GPUType     string `json:"gpu_type,omitempty"`
	GPUCount    *int   `json:"gpu_count,omitempty"`
}

type UpdateServerDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	GPUType     *string `json:"gpu_type,omitempty"`
	GPUCount    *int    `json:"gpu_count,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
