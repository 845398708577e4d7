package requests

type SetManualLocation struct {
	Place string `json:"place" validate:"required"`
}
