// Package configs holds files bundled into the daybook binary.
package configs

import "embed"

// QuestionsFile is the path of the default question bank inside FS.
const QuestionsFile = "questions.json"

//go:embed questions.json
var FS embed.FS
