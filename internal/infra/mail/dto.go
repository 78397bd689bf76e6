package mail

type LeadCapturedEmailData struct {
	Name  string
	Email string
	Phone string
	Score int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	SalesTo  string
}
