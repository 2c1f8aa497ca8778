package room

import "github.com/CSE-4113-IP-Lab/booking-service/pkg/dbmetrics"

// DBExecutor is the query surface the repository needs; reused from
// dbmetrics so transactions in context are honoured.
type DBExecutor = dbmetrics.DBExecutor
