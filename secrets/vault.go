package secrets

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

type Vault struct {
	DBPath string
	*api.Client
}

func New(token, address, dbPath string) (*Vault, error) {
	config := &api.Config{
		Address: address,
	}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("new: error initializing vault: %w", err)
	}

	client.SetToken(token)

	status, err := client.Sys().SealStatus()
	if err != nil {
		return nil, fmt.Errorf("new: error getting seal status: %w", err)
	}

	if status.Sealed {
		return nil, fmt.Errorf("new: vault is sealed")
	}

	return &Vault{DBPath: dbPath, Client: client}, nil
}

// DatabaseDSN reads the connection string for the relational store.
func (v *Vault) DatabaseDSN() (string, error) {
	secret, err := v.Logical().Read(v.DBPath)
	if err != nil {
		return "", fmt.Errorf("databaseDSN: error reading %s: %w", v.DBPath, err)
	}

	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("databaseDSN: no secret at %s", v.DBPath)
	}

	dsn, ok := secret.Data["dsn"].(string)
	if !ok || dsn == "" {
		return "", fmt.Errorf("databaseDSN: dsn not found at %s", v.DBPath)
	}

	return dsn, nil
}
