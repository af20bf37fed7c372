package adminapi

// RegisterRoutes mounts every API route group. Call after webserver.Init.
func RegisterRoutes() {
	registerProductRoutes()
	registerAuthRoutes()
	registerDashboardRoutes()
}
