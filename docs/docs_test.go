package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_ReadDoc(t *testing.T) {
	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		BasePath            string                    `json:"basePath"`
		SecurityDefinitions map[string]map[string]any `json:"securityDefinitions"`
		Paths               map[string]any            `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Triply API", doc.Info.Title)
	assert.Equal(t, "1.0", doc.Info.Version)
	assert.Equal(t, "/", doc.BasePath)
	assert.Equal(t, "header", doc.SecurityDefinitions["BearerAuth"]["in"])
	assert.Contains(t, doc.Paths, "/itineraries/{id}")
}

// swag init rebuilds this package from the general annotations on main;
// they have to describe the same API as the registered document.
func TestGeneralAnnotationsMatch(t *testing.T) {
	src, err := os.ReadFile("../server/main.go")
	require.NoError(t, err)
	main := string(src)

	assert.Contains(t, main, "// @title "+SwaggerInfo.Title+"\n")
	assert.Contains(t, main, "// @version "+SwaggerInfo.Version+"\n")
	assert.Contains(t, main, "// @description "+SwaggerInfo.Description+"\n")
	assert.Contains(t, main, "// @BasePath "+SwaggerInfo.BasePath+"\n")
	assert.Contains(t, main, "// @securityDefinitions.apikey BearerAuth\n")
	assert.Contains(t, main, "// @in header\n")
	assert.Contains(t, main, "// @name Authorization\n")
}
