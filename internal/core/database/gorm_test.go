package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	cases := []struct {
		name, in, user, pass, want string
	}{
		{"native passes through", "u:p@tcp(db:3306)/aquarium", "", "", "u:p@tcp(db:3306)/aquarium"},
		{"url", "mysql://u:p@db:3306/aquarium", "", "", "u:p@tcp(db:3306)/aquarium?charset=utf8mb4&parseTime=true"},
		{"jdbc with overrides", "jdbc:mysql://db:3306/aquarium?useSSL=false&serverTimezone=UTC&characterEncoding=utf8", "root", "pw",
			"root:pw@tcp(db:3306)/aquarium?charset=utf8&loc=UTC&parseTime=true&tls=false"},
		{"empty", "  ", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeMySQLDSN(tc.in, tc.user, tc.pass))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "root:****@tcp(db:3306)/aquarium", maskDSN("root:secret@tcp(db:3306)/aquarium"))
	assert.Equal(t, "tcp(db:3306)/aquarium", maskDSN("tcp(db:3306)/aquarium"))
}

func TestDialector(t *testing.T) {
	l := zap.NewNop()

	d, err := Dialector(Opts{Driver: "postgres", DSN: "host=localhost"}, l)
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = Dialector(Opts{Driver: "mysql", DSN: "mysql://u:p@db/aquarium"}, l)
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(Opts{Driver: "memory"}, l)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
