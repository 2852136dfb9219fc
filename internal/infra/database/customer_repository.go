package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/ligue-auth/internal/entity"
)

// A tabela vem do TypeORM do backoffice, por isso as aspas em "cpfCnpj".
const findCustomerByCPFQuery = `SELECT id, nome, "cpfCnpj" FROM clientes WHERE "cpfCnpj" = $1`

type CustomerRepository struct {
	Opener ConnectionOpener
}

func NewCustomerRepository(opener ConnectionOpener) *CustomerRepository {
	return &CustomerRepository{Opener: opener}
}

// FindByCPF abre a conexão, consulta, fecha e só então devolve o resultado.
// Se houver mais de uma linha com o mesmo CPF, vale a primeira.
func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	db, err := r.Opener.Open(ctx)
	if err != nil {
		return nil, err
	}

	customer, queryErr := queryFirstCustomer(ctx, db, cpf)
	closeErr := db.Close()

	if queryErr != nil {
		return nil, queryErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("erro ao fechar conexão: %w", closeErr)
	}
	if customer == nil {
		return nil, entity.ErrCustomerNotFound
	}

	return customer, nil
}

func queryFirstCustomer(ctx context.Context, db *sql.DB, cpf string) (*entity.Customer, error) {
	rows, err := db.QueryContext(ctx, findCustomerByCPFQuery, cpf)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		return nil, nil
	}

	var (
		c    entity.Customer
		nome sql.NullString
	)
	if err := rows.Scan(&c.ID, &nome, &c.CPF); err != nil {
		return nil, fmt.Errorf("erro ao ler cliente: %w", err)
	}
	if nome.Valid {
		c.Name = &nome.String
	}

	return &c, nil
}
