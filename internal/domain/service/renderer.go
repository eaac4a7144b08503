package service

import "time"

// CertificateDocumentData is everything the renderer needs to draw one
// certificate page. It is assembled by the use case from the stored
// certificate plus identity metadata; the renderer performs no lookups.
type CertificateDocumentData struct {
	IssuerName        string
	RecipientName     string
	CourseTitle       string
	CourseDescription string // May be empty; the renderer omits the block.
	IssuedAt          time.Time
	VerificationCode  string
	VerifyURL         string
	CompletedLessons  int
	TotalLessons      int
}

// CertificateRenderer turns certificate data into a self-contained,
// fixed-layout document. Rendering is a pure transformation: the same input
// produces the same page for the lifetime of one renderer version, and a
// render failure never touches the stored certificate.
type CertificateRenderer interface {
	// Render produces the document bytes for one certificate.
	Render(data *CertificateDocumentData) ([]byte, error)

	// ContentType returns the MIME type of rendered documents.
	ContentType() string

	// FileExtension returns the file extension (without dot) for rendered
	// documents, used for download filenames and storage keys.
	FileExtension() string
}
