package config

import "testing"

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "no password",
			cfg:  Config{DBName: "gamerental", DBPort: "5432", DBUser: "app", DBHost: "localhost", SSLMode: "disable"},
			want: "postgres://app@localhost:5432/gamerental?sslmode=disable",
		},
		{
			name: "with password",
			cfg:  Config{DBName: "gamerental", DBPort: "5433", DBUser: "app", DBHost: "db", DBPassword: "secret", SSLMode: "require"},
			want: "postgres://app:secret@db:5433/gamerental?sslmode=require",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.want {
				t.Errorf("DSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PGHOST", "")
	t.Setenv("PGPASSWORD", "")
	t.Setenv("PGSSLMODE", "")

	cfg := Load("gamerental", "5432", "app")
	if cfg.DBHost != "localhost" {
		t.Errorf("DBHost = %q, want localhost", cfg.DBHost)
	}
	if cfg.DBPassword != "" {
		t.Errorf("DBPassword = %q, want empty", cfg.DBPassword)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want disable", cfg.SSLMode)
	}
}
