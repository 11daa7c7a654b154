package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := load(newViper())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, EventsNone, cfg.Events.Driver)
	assert.Equal(t, 3, cfg.Inventory.MaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.Cache.ItemTTL)
	assert.Equal(t, []string{"book", "academic-book", "stationery"}, cfg.Catalog.Enabled)
	assert.Equal(t, uint32(5), cfg.Breaker.Config().FailureThreshold)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CATALOG_SERVER_PORT", "9090")
	t.Setenv("CATALOG_DATABASE_DRIVER", "postgres")
	t.Setenv("CATALOG_DATABASE_PORT", "5432")
	t.Setenv("CATALOG_INVENTORY_MAX_RETRIES", "5")
	t.Setenv("CATALOG_EVENTS_DRIVER", "kafka")
	t.Setenv("CATALOG_EVENTS_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := load(newViper())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Inventory.MaxRetries)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Kafka.Brokers)
}

func TestYAMLConfig(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
server:
  port: 8181
database:
  driver: memory
catalog:
  enabled: [book]
`)))

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, []string{"book"}, cfg.Catalog.Enabled)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"端口越界", map[string]string{"CATALOG_SERVER_PORT": "70000"}},
		{"未知数据库驱动", map[string]string{"CATALOG_DATABASE_DRIVER": "sqlite"}},
		{"未知事件驱动", map[string]string{"CATALOG_EVENTS_DRIVER": "nats"}},
		{"重试次数为负", map[string]string{"CATALOG_INVENTORY_MAX_RETRIES": "-1"}},
		{"生产环境默认密钥", map[string]string{"CATALOG_SERVER_MODE": "release"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, val := range tc.env {
				t.Setenv(k, val)
			}
			_, err := load(newViper())
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	mysql := DatabaseConfig{Driver: DriverMySQL, User: "root", Password: "pw", Host: "db", Port: 3306, DBName: "catalog", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai"}
	assert.Equal(t, "root:pw@tcp(db:3306)/catalog?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai&clientFoundRows=true", mysql.DSN())

	pg := DatabaseConfig{Driver: DriverPostgres, User: "postgres", Password: "pw", Host: "db", Port: 5432, DBName: "catalog", SSLMode: "disable", Loc: "UTC"}
	assert.Equal(t, "host=db user=postgres password=pw dbname=catalog port=5432 sslmode=disable TimeZone=UTC", pg.DSN())
}
