package requests

type UpdateSearchText struct {
	Text string `json:"text"`
}

type UpdateFilterValue struct {
	Value string `json:"value" validate:"required"`
}
