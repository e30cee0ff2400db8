package outreach

// SenderProfile describes the job seeker on whose behalf a draft is written.
type SenderProfile struct {
	// Name is the sender's full name, used in the signoff.
	Name string

	// Headline is a one-line self-description.
	// Example: "Backend engineer, 4 years of Go and distributed systems"
	Headline string

	// Skills lists the sender's notable skills, strongest first.
	Skills []string

	// Highlights are short achievement bullets worth mentioning.
	Highlights []string
}

// Draft is one generated outreach email.
type Draft struct {
	// Subject is the email subject line.
	Subject string

	// Body is the plain-text email body, greeting through signoff.
	Body string
}
