package domain

import "time"

type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	ID            int64  `json:"id"`
	CEP           string `json:"cep"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	AddressDetail string `json:"addressDetail,omitempty"`
}
