package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig carries the SMTP connection settings from the app config.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider implements Provider over SMTP via gomail.
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) (*SMTPProvider, error) {
	if cfg.Host == "" || cfg.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from_email are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

func (p *SMTPProvider) SendPaymentConfirmation(to, bookingID, orderID string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your booking payment is confirmed")
	m.SetBody("text/html", renderPaymentConfirmation(bookingID, orderID))

	return p.dialer.DialAndSend(m)
}
