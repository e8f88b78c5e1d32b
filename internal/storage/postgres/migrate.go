package postgres

import (
    "errors"
    "strings"

    "github.com/golang-migrate/migrate/v4"
    _ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
    _ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies all up migrations found at path against dsn.
func RunMigrations(dsn, path string) error {
    // migrate's pgx/v5 driver registers the pgx5 scheme
    url := dsn
    if strings.HasPrefix(url, "postgresql://") {
        url = "pgx5://" + strings.TrimPrefix(url, "postgresql://")
    } else if strings.HasPrefix(url, "postgres://") {
        url = "pgx5://" + strings.TrimPrefix(url, "postgres://")
    }
    m, err := migrate.New("file://"+path, url)
    if err != nil {
        return err
    }
    defer m.Close()
    if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
        return err
    }
    return nil
}
