package connection_test

import (
	"testing"

	"employee-service/internal/config"
	"employee-service/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestDialector(t *testing.T) {
	cases := []struct {
		driver string
		name   string
		ok     bool
	}{
		{driver: "", name: "postgres", ok: true},
		{driver: "postgres", name: "postgres", ok: true},
		{driver: "mysql", name: "mysql", ok: true},
		{driver: "oracle", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.driver, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Database.Driver = tc.driver

			d, err := connection.Dialector(cfg)

			if !tc.ok {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}
}

func TestNewKafkaWriter(t *testing.T) {
	w := connection.NewKafkaWriter("localhost:9092")
	defer w.Close()

	assert.Equal(t, "", w.Topic)
	assert.True(t, w.AllowAutoTopicCreation)
}
