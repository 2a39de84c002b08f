// File path: internal/compose/artifact.go
package compose

// RenderArtifact produces the downloadable plain-text form of a draft. The
// template is byte-exact: "Subject: <subject>\n\n<body>".
func RenderArtifact(subject, body string) string {
	return "Subject: " + subject + "\n\n" + body
}
