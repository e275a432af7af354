package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/viplat/gamehub-api/controllers"
	"github.com/viplat/gamehub-api/stores"
	"github.com/viplat/gamehub-api/utils"
)

func BlogRoutes(server *gin.Engine, blogs stores.BlogStore, contacts stores.ContactStore, mailer *utils.Mailer, dev bool) {
	server.GET("/api/blogs", controllers.GetBlogs(blogs, dev))
	server.GET("/api/blogs/:id", controllers.GetBlog(blogs, dev))
	server.POST("/api/contact", controllers.CreateContact(contacts, mailer, dev))
}
