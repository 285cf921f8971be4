package mail

import (
	"bytes"
	"html/template"
)

const resetTemplate = `
<div style="
	border: 1px solid black;
	padding: 20px;
	font-family: sans-serif;
	line-height: 2;
	font-size: 20px;
">
	<h2>Hello There!</h2>
	<p>Your password reset token is here.</p>
	<p><a href="{{.ResetURL}}">Click here to reset your password</a></p>
	<p>This link expires in one hour.</p>
</div>
`

var resetTmpl = template.Must(template.New("reset").Parse(resetTemplate))

// ResetBody renders the password-reset email body for the given link.
func ResetBody(resetURL string) string {
	var buf bytes.Buffer
	// The template only references ResetURL; execution cannot fail for a
	// plain string input.
	_ = resetTmpl.Execute(&buf, struct{ ResetURL string }{ResetURL: resetURL})
	return buf.String()
}
