package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// healthCheck reports process liveness plus a few cheap vitals for the
// hosting platform's probes.
func (server *Server) healthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"jobsCount": len(server.store.All()),
		"uptime":    time.Since(server.startedAt).Seconds(),
		"memory": gin.H{
			"alloc":      m.Alloc,
			"allocHuman": humanize.Bytes(m.Alloc),
			"sys":        m.Sys,
			"sysHuman":   humanize.Bytes(m.Sys),
		},
	})
}
