package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger registra a UI de documentação quando o swagger.json gerado
// existe no caminho dado. Com o arquivo ausente nada é registrado e a função
// devolve false: a documentação some, mas o processo sobe e serve a API.
func RegisterSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
