package clients

type CreateClientRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin,omitempty" validate:"omitempty,max=15"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
}
