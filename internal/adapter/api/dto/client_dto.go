package dto

import (
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
)

// ClientRequest representa os dados de um cliente para criação ou atualização
type ClientRequest struct {
	Name      string           `json:"name" binding:"required"`
	Phone     string           `json:"phone"`
	WhatsApp  string           `json:"whatsapp"`
	Addresses []AddressRequest `json:"addresses"`
}

// AddressRequest representa os dados de um endereço
type AddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"house_number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code"`
}

// ClientListResponse representa a resposta de lista de clientes
type ClientListResponse struct {
	Items      []*client.Client `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToClientListResponse monta a resposta paginada de clientes
func ToClientListResponse(clients []*client.Client, total int, p Pagination) ClientListResponse {
	if clients == nil {
		clients = []*client.Client{}
	}
	return ClientListResponse{
		Items:      clients,
		Total:      total,
		Page:       p.Page,
		Size:       p.PageSize,
		TotalPages: calculateTotalPages(total, p.PageSize),
	}
}

// CEPResponse representa o endereço encontrado para um CEP
type CEPResponse struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}
