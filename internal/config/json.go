package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations accepted as "30m"-style strings).
type StructuredJSONConfig struct {
	App struct {
		APIKey            string   `json:"api_key"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		SessionTTL        Duration `json:"session_ttl"`
		SessionCookieName string   `json:"session_cookie_name"`
		DefaultLanguageID int64    `json:"default_language_id"`
		SenderAuthID      int64    `json:"sender_auth_id"`
		PaymentGrace      Duration `json:"payment_grace"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Notify struct {
		SMTP struct {
			Host      string `json:"host"`
			Port      int    `json:"port"`
			Username  string `json:"username"`
			Password  string `json:"password"`
			FromName  string `json:"from_name"`
			FromEmail string `json:"from_email"`
		} `json:"smtp,omitempty"`
		GatewayURL     string   `json:"gateway_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"notify,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:            jsonCfg.App.APIKey,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			SessionTTL:        time.Duration(jsonCfg.App.SessionTTL),
			SessionCookieName: jsonCfg.App.SessionCookieName,
			DefaultLanguageID: jsonCfg.App.DefaultLanguageID,
			SenderAuthID:      jsonCfg.App.SenderAuthID,
			PaymentGrace:      time.Duration(jsonCfg.App.PaymentGrace),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Notify: Notify{
			SMTP: SMTP{
				Host:      jsonCfg.Notify.SMTP.Host,
				Port:      jsonCfg.Notify.SMTP.Port,
				Username:  jsonCfg.Notify.SMTP.Username,
				Password:  jsonCfg.Notify.SMTP.Password,
				FromName:  jsonCfg.Notify.SMTP.FromName,
				FromEmail: jsonCfg.Notify.SMTP.FromEmail,
			},
			GatewayURL:     jsonCfg.Notify.GatewayURL,
			RequestTimeout: time.Duration(jsonCfg.Notify.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
