package database

import (
	"goodsStore/pkg/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:   "postgres",
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "pw",
		Name:     "goods_store",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=goods_store sslmode=disable TimeZone=UTC", DSN(cfg))

	cfg.Driver = "mysql"
	cfg.Port = "3306"
	assert.Equal(t, "app:pw@tcp(db:3306)/goods_store?charset=utf8mb4&parseTime=True&loc=UTC", DSN(cfg))
}

func TestDialector(t *testing.T) {
	assert.Equal(t, "mysql", Dialector(config.DatabaseConfig{Driver: "mysql"}).Name())
	assert.Equal(t, "postgres", Dialector(config.DatabaseConfig{Driver: "postgres"}).Name())
}
