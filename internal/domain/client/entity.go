package client

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyContact   = errors.New("informe telefone ou whatsapp")
	ErrEmptyStreet    = errors.New("logradouro não pode ser vazio")
	ErrEmptyCity      = errors.New("cidade não pode ser vazia")
	ErrInvalidState   = errors.New("UF deve ter duas letras")
	ErrInvalidZipCode = errors.New("CEP deve ter 8 dígitos")
)

// Client representa um cliente da confeitaria
type Client struct {
	ID        string    `json:"id"`         // ID do Cliente
	Name      string    `json:"name"`       // Nome
	Phone     string    `json:"phone"`      // Telefone
	WhatsApp  string    `json:"whatsapp"`   // WhatsApp
	Addresses []Address `json:"addresses"`  // Endereços
	CreatedAt time.Time `json:"created_at"` // Data de Criação
	UpdatedAt time.Time `json:"updated_at"` // Data de Atualização
}

// Address representa um endereço de entrega do cliente
type Address struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	Street       string    `json:"street"`       // Logradouro
	Number       string    `json:"house_number"` // Número
	Complement   string    `json:"complement"`   // Complemento
	Neighborhood string    `json:"neighborhood"` // Bairro
	City         string    `json:"city"`         // Cidade
	State        string    `json:"state"`        // UF
	ZipCode      string    `json:"zip_code"`     // CEP, somente dígitos
	IsPrimary    bool      `json:"is_primary"`   // Endereço Principal
	CreatedAt    time.Time `json:"created_at"`
}

// NewClient cria um novo cliente
func NewClient(name, phone, whatsapp string) (*Client, error) {
	c := &Client{ID: uuid.New().String(), CreatedAt: time.Now()}
	if err := c.Update(name, phone, whatsapp); err != nil {
		return nil, err
	}
	return c, nil
}

// Update atualiza os dados de contato do cliente
func (c *Client) Update(name, phone, whatsapp string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	phone = strings.TrimSpace(phone)
	whatsapp = strings.TrimSpace(whatsapp)
	if phone == "" && whatsapp == "" {
		return ErrEmptyContact
	}
	c.Name = name
	c.Phone = phone
	c.WhatsApp = whatsapp
	c.UpdatedAt = time.Now()
	return nil
}

// NewAddress cria um endereço validando os campos obrigatórios
func NewAddress(clientID, street, number, complement, neighborhood, city, state, zipCode string) (*Address, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return nil, ErrEmptyStreet
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	state = strings.ToUpper(strings.TrimSpace(state))
	if len(state) != 2 {
		return nil, ErrInvalidState
	}
	zip := OnlyDigits(zipCode)
	if zip != "" && len(zip) != 8 {
		return nil, ErrInvalidZipCode
	}

	return &Address{
		ID:           uuid.New().String(),
		ClientID:     clientID,
		Street:       street,
		Number:       strings.TrimSpace(number),
		Complement:   strings.TrimSpace(complement),
		Neighborhood: strings.TrimSpace(neighborhood),
		City:         city,
		State:        state,
		ZipCode:      zip,
		CreatedAt:    time.Now(),
	}, nil
}

// AddAddress adiciona um endereço; o primeiro endereço do cliente vira o principal
func (c *Client) AddAddress(a Address) Address {
	a.ClientID = c.ID
	a.IsPrimary = len(c.Addresses) == 0
	c.Addresses = append(c.Addresses, a)
	c.UpdatedAt = time.Now()
	return a
}

// PrimaryAddress retorna o endereço principal, se houver
func (c *Client) PrimaryAddress() (Address, bool) {
	for _, a := range c.Addresses {
		if a.IsPrimary {
			return a, true
		}
	}
	return Address{}, false
}

// OnlyDigits remove tudo que não for dígito
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
