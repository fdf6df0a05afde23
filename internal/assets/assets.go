package assets

// DefaultTemplateName is the built-in 5x5 template.
const DefaultTemplateName = "classic"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a built-in template by name.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) ([]byte, error) {
	return defaultLoader.Load(Template, name)
}

// LoadWordList loads a built-in word list by name.
// Returns ErrWordListNotFound if the list does not exist.
func LoadWordList(name string) ([]byte, error) {
	return defaultLoader.Load(WordList, name)
}

// TemplateNames lists the built-in templates.
func TemplateNames() []string {
	names, _ := defaultLoader.Names(Template)
	return names
}
