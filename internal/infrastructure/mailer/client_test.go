package mailer

import (
	"io"
	"testing"

	"backoffice/internal/config"
	"backoffice/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRespectsConfiguredPort(t *testing.T) {
	tests := []struct {
		name     string
		port     int
		wantAddr string
	}{
		{name: "starttls submission port", port: 587, wantAddr: "smtp.example.com:587"},
		{name: "implicit tls port", port: 465, wantAddr: "smtp.example.com:465"},
		{name: "custom relay port", port: 2525, wantAddr: "smtp.example.com:2525"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(config.SMTP{
				Host: "smtp.example.com",
				Port: tt.port,
				From: "noreply@backoffice.local",
			}, logger.NewWithWriter(io.Discard))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, c.client.ServerAddr())
		})
	}
}
