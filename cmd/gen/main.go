package main

import (
	"diploma/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CourseModel{},
		model.CourseModuleModel{},
		model.LessonModel{},
		model.LessonProgressModel{},
		model.CourseCertificateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
