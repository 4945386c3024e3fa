package module

import (
	"patrolstats/internal/services/api/analytics/domain"
)

// Ports are the cross module ports exported by analytics
type Ports struct {
	Analytics domain.ServicePort
}
