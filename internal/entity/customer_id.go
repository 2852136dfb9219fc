package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// CustomerID guarda o id da tabela clientes sem assumir o tipo da coluna.
// Colunas inteiras viram número no JSON; texto e uuid viram string.
type CustomerID struct {
	num     int64
	text    string
	numeric bool
}

func NumericCustomerID(n int64) CustomerID {
	return CustomerID{num: n, numeric: true}
}

func TextCustomerID(s string) CustomerID {
	return CustomerID{text: s}
}

func (id CustomerID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.text
}

// Scan implementa sql.Scanner. lib/pq entrega uuid como []byte textual,
// o pgx/stdlib entrega como string.
func (id *CustomerID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return errors.New("customer id is null")
	case int64:
		*id = NumericCustomerID(v)
	case int32:
		*id = NumericCustomerID(int64(v))
	case string:
		*id = TextCustomerID(v)
	case []byte:
		*id = TextCustomerID(string(v))
	case [16]byte:
		*id = TextCustomerID(uuid.UUID(v).String())
	default:
		return fmt.Errorf("unsupported customer id type %T", src)
	}
	return nil
}

func (id CustomerID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(strconv.FormatInt(id.num, 10)), nil
	}
	return json.Marshal(id.text)
}

func (id *CustomerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TextCustomerID(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid customer id %s: %w", data, err)
	}
	*id = NumericCustomerID(n)
	return nil
}
