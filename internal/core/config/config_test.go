package config

import (
	"os"
	"path/filepath"
	"testing"
)

const yamlTeste = `
app:
  name: marketplace-api
  env: test
  http:
    host: 127.0.0.1
    port: 18080
    readtimeoutsec: 5
    writetimeoutsec: 10
    idletimeoutsec: 60
  admin:
    host: 127.0.0.1
    port: 18081
log:
  level: debug
  json: true
jwt:
  secret: s3gr3d0
  issuer: marketplace-api
  accesstokenttlmin: 30
db:
  driver: postgres
  dsn: host=127.0.0.1 dbname=mkt
  automigrate: true
redis:
  addr: 127.0.0.1:6379
  db: 2
  categoria_ttl_sec: 120
  dashboard_ttl_sec: 45
seed:
  enable: true
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlTeste), 0o600); err != nil {
		t.Fatal(err)
	}

	c := Load(path)

	if c.App.HTTP.Port != 18080 || c.App.Admin.Port != 18081 {
		t.Errorf("portas: %+v", c.App)
	}
	if !c.Log.JSON || c.Log.Level != "debug" {
		t.Errorf("log: %+v", c.Log)
	}
	if c.JWT.Secret != "s3gr3d0" || c.JWT.AccessTokenTTLMin != 30 {
		t.Errorf("jwt: %+v", c.JWT)
	}
	if c.DB.Driver != "postgres" || !c.DB.AutoMigrate {
		t.Errorf("db: %+v", c.DB)
	}
	if c.Redis.DB != 2 || c.Redis.CategoriaTTLSec != 120 || c.Redis.DashboardTTLSec != 45 {
		t.Errorf("redis: %+v", c.Redis)
	}
	if !c.Seed.Enable {
		t.Error("seed.enable deveria vir true")
	}
}
