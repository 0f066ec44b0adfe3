package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // displayed sender, may differ from Username
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

func EmailCodeHTML(action, code string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	return fmt.Sprintf(`<p>Hej,</p><p>Du håller på att <b>%s</b>. Din verifieringskod är: <b style="font-size:18px;">%s</b>.</p><p>Koden är giltig i %d minuter.</p>`, action, code, minutes)
}

func NewPostHTML(title, postURL string) string {
	return fmt.Sprintf(`<p>Hej!</p><p>Ett nytt blogginlägg har publicerats: <strong>%s</strong></p><p><a href="%s">Läs inlägget</a></p><p>/SarasBlogg</p>`, title, postURL)
}

func ContactMessageHTML(name, email, subject, message string) string {
	return fmt.Sprintf(`<p>Nytt meddelande via kontaktformuläret.</p><p><b>Från:</b> %s (%s)</p><p><b>Ämne:</b> %s</p><p>%s</p>`, name, email, subject, message)
}
