package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID, com seus endereços
	FindByID(ctx context.Context, id string) (*Client, error)

	// Search busca clientes pelo nome ou whatsapp com paginação
	Search(ctx context.Context, query string, limit, offset int) ([]*Client, int, error)

	// Update atualiza os dados de um cliente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// AddAddress grava um novo endereço do cliente
	AddAddress(ctx context.Context, a *Address) error

	// ListAddresses lista os endereços de um cliente, principal primeiro
	ListAddresses(ctx context.Context, clientID string) ([]Address, error)

	// FindAddress busca um endereço pelo ID
	FindAddress(ctx context.Context, id string) (*Address, error)
}
