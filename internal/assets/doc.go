// Package assets provides the built-in board templates and word lists.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// Assets are addressed by Kind (Template or WordList) and a bare name, so
// "classic" resolves to templates/classic.csv and "hollywood" to
// words/hollywood.txt. A custom directory can override any built-in asset by
// providing a file with the same name.
//
// # Directory Structure
//
//	{basePath}/
//	├── templates/
//	│   └── {name}.csv    # board template: category markers, "e" for free space
//	└── words/
//	    └── {name}.txt    # one word or phrase per line
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
