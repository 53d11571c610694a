package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/controllers"
	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	teacherController *controllers.TeacherController,
	parentController *controllers.ParentController,
	studentController *controllers.StudentController,
	cycleController *controllers.CycleController,
	fieldController *controllers.FieldController,
	specializationController *controllers.SpecializationController,
	levelController *controllers.LevelController,
	groupController *controllers.GroupController,
	subjectController *controllers.SubjectController,
	courseFileController *controllers.CourseFileController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/login", authController.Login)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Account and profile management is reserved to administrators.
	adminOnly := authenticated.Group("")
	adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		adminOnly.POST("/register-admin", adminController.RegisterAdmin)
		adminOnly.POST("/add-teacher", teacherController.AddTeacher)
		adminOnly.POST("/add-parent", parentController.AddParent)
		adminOnly.POST("/add-student", studentController.AddStudent)

		admins := adminOnly.Group("/admins")
		{
			admins.GET("", adminController.ListAdmins)
			admins.GET("/:id", adminController.GetAdmin)
			admins.PUT("/:id", adminController.UpdateAdmin)
			admins.DELETE("/:id", adminController.DeleteAdmin)
		}

		teachers := adminOnly.Group("/teachers")
		{
			teachers.GET("", teacherController.ListTeachers)
			teachers.GET("/:id", teacherController.GetTeacher)
			teachers.PUT("/:id", teacherController.UpdateTeacher)
			teachers.DELETE("/:id", teacherController.DeleteTeacher)
			teachers.POST("/:id/assign-subjects", teacherController.AssignSubjects)
		}

		parents := adminOnly.Group("/parents")
		{
			parents.GET("", parentController.ListParents)
			parents.GET("/:id", parentController.GetParent)
			parents.PUT("/:id", parentController.UpdateParent)
			parents.DELETE("/:id", parentController.DeleteParent)
		}
		adminOnly.GET("/parents-paginated", parentController.ListParentsPaginated)

		students := adminOnly.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}
		adminOnly.GET("/students-paginated", studentController.ListStudentsPaginated)

		// Academic structure mutations.
		adminOnly.POST("/cycles", cycleController.CreateCycle)
		adminOnly.PUT("/cycles/:id", cycleController.UpdateCycle)
		adminOnly.DELETE("/cycles/:id", cycleController.DeleteCycle)

		adminOnly.POST("/fields", fieldController.CreateField)
		adminOnly.PUT("/fields/:id", fieldController.UpdateField)
		adminOnly.DELETE("/fields/:id", fieldController.DeleteField)

		adminOnly.POST("/specializations", specializationController.CreateSpecialization)
		adminOnly.PUT("/specializations/:id", specializationController.UpdateSpecialization)
		adminOnly.DELETE("/specializations/:id", specializationController.DeleteSpecialization)

		adminOnly.POST("/levels", levelController.CreateLevel)
		adminOnly.PUT("/levels/:id", levelController.UpdateLevel)
		adminOnly.DELETE("/levels/:id", levelController.DeleteLevel)

		adminOnly.POST("/groups", groupController.CreateGroup)
		adminOnly.PUT("/groups/:id", groupController.UpdateGroup)
		adminOnly.DELETE("/groups/:id", groupController.DeleteGroup)

		adminOnly.POST("/subjects", subjectController.CreateSubject)
		adminOnly.PUT("/subjects/:id", subjectController.UpdateSubject)
		adminOnly.DELETE("/subjects/:id", subjectController.DeleteSubject)
	}

	// Academic structure reads are open to every authenticated role.
	{
		authenticated.GET("/cycles", cycleController.ListCycles)
		authenticated.GET("/cycles/:id", cycleController.GetCycle)

		authenticated.GET("/fields", fieldController.ListFields)
		authenticated.GET("/fields/:id", fieldController.GetField)

		authenticated.GET("/specializations", specializationController.ListSpecializations)
		authenticated.GET("/specializations/:id", specializationController.GetSpecialization)

		authenticated.GET("/levels", levelController.ListLevels)
		authenticated.GET("/levels/:id", levelController.GetLevel)
		authenticated.GET("/levels/specialization/:id", levelController.ListLevelsBySpecialization)
		authenticated.GET("/levels-paginated", levelController.ListLevelsPaginated)

		authenticated.GET("/groups", groupController.ListGroups)
		authenticated.GET("/groups/:id", groupController.GetGroup)

		authenticated.GET("/subjects", subjectController.ListSubjects)
		authenticated.GET("/subjects/:id", subjectController.GetSubject)
	}

	// Course material. Upload ownership is enforced by the service.
	courseFiles := authenticated.Group("/course-files")
	{
		courseFiles.GET("", courseFileController.ListCourseFiles)
		courseFiles.POST("/:subjectId", courseFileController.AddCourseFile)
		courseFiles.GET("/:id", courseFileController.GetCourseFile)
		courseFiles.GET("/:id/download", courseFileController.DownloadCourseFile)
		courseFiles.PUT("/:id", courseFileController.UpdateCourseFile)
		courseFiles.DELETE("/:id", courseFileController.DeleteCourseFile)
	}
	authenticated.GET("/course-files-paginated", courseFileController.ListCourseFilesPaginated)
	authenticated.GET("/subjects/:id/course-files", courseFileController.ListCourseFilesBySubject)
	authenticated.GET("/subjects/:id/teachers", subjectController.ListSubjectTeachers)

	// Head-count reports.
	{
		authenticated.GET("/teachers/total", teacherController.CountTeachers)
		authenticated.GET("/students/total", reportController.CountAllStudents)
		authenticated.GET("/students/count-by-cycle-field", reportController.CountStudentsByCycleAndField)
		authenticated.GET("/cycles/:id/students/total", reportController.CountStudentsByCycle)
		authenticated.GET("/fields/:id/students/total", reportController.CountStudentsByField)
		authenticated.GET("/specializations/:id/students/total", reportController.CountStudentsBySpecialization)
	}
}
