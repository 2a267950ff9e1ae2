package infra

import (
	"testing"
	"time"

	"github.com/amirasaad/accounts/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		name    string
		wantErr bool
	}{
		{url: "postgres://u:p@localhost:5432/db", name: "postgres"},
		{url: "postgresql://u:p@localhost:5432/db", name: "postgres"},
		{url: "sqlite://file::memory:", name: "sqlite"},
		{url: "file:accounts.db", name: "sqlite"},
		{url: "mysql://localhost/db", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			t.Parallel()
			d, err := Dialector(tc.url)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}
}

func TestNewDBConnection_MissingURL(t *testing.T) {
	t.Parallel()
	_, err := NewDBConnection(&config.DB{}, "test")
	assert.EqualError(t, err, "DATABASE_URL is not set")

	_, err = NewDBConnection(nil, "test")
	assert.Error(t, err)
}

func TestNewDBConnection_SQLite(t *testing.T) {
	t.Parallel()
	db, err := NewDBConnection(&config.DB{
		Url:             "sqlite://file::memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.True(t, db.Migrator().HasTable("accounts"))
	for _, col := range []string{"id", "name", "address", "email", "phone_number"} {
		assert.True(t, db.Migrator().HasColumn("accounts", col), col)
	}
}
