package testfixtures

import "github.com/mark3labs/firstrun/internal/wizard"

// ThreePages returns titled pages for a typical wizard.
func ThreePages() []wizard.Page {
	return []wizard.Page{
		{Title: "Welcome"},
		{Title: "Accounts"},
		{Title: "Security"},
	}
}

// ManyPages returns n untitled pages, labelled "Step i" by the wizard.
func ManyPages(n int) []wizard.Page {
	return make([]wizard.Page, n)
}
