package report

import "io"

// Writer genera el archivo del reporte en un formato concreto (txt, xlsx, pdf).
type Writer interface {
	Format() string
	ContentType() string
	Write(w io.Writer, r *Report) error
}
