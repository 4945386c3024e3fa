package module

import (
	"patrolstats/internal/services/api/report/domain"
)

// Ports are the cross module ports exported by report
type Ports struct {
	Report domain.ServicePort
}
