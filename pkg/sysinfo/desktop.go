package sysinfo

// noDesktop provides the desktop-environment capabilities that neither
// covered platform implements. Embedding it keeps the per-OS probers
// focused on the facts they can actually answer.
type noDesktop struct{}

func (noDesktop) Theme() string    { return "" }
func (noDesktop) WM() string       { return "" }
func (noDesktop) DE() string       { return "" }
func (noDesktop) Icons() string    { return "" }
func (noDesktop) Terminal() string { return "" }
func (noDesktop) SysFont() string  { return "" }
func (noDesktop) Cursor() string   { return "" }
func (noDesktop) TermFont() string { return "" }
