package constant

const (
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID      contextKey = "user_id"
	ContextKeyUsername    contextKey = "username"
	ContextKeyUserRole    contextKey = "user_role"
	ContextKeyTokenID     contextKey = "token_id"
	ContextKeyTokenExpiry contextKey = "token_expiry"
)

const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

const (
	CheckInStatusActive    = "Active"
	CheckInStatusCompleted = "Completed"
)

const (
	CategoryRoom     = "Room"
	CategoryFood     = "Food"
	CategoryBeverage = "Beverage"
	CategoryServices = "Services"
	CategoryOther    = "Other"
)

const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentMobile = "Mobile"
	PaymentCheck  = "Check"
	PaymentOnline = "Online"
)

// SaleCategories and PaymentMethods are served as-is by the sales enumeration endpoints.
var (
	SaleCategories = []string{CategoryRoom, CategoryFood, CategoryBeverage, CategoryServices, CategoryOther}
	PaymentMethods = []string{PaymentCash, PaymentCard, PaymentMobile, PaymentCheck, PaymentOnline}
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamRole    = "role"
	RequestParamDays    = "days"
	RequestParamFormat  = "format"
	RequestParamEmpID   = "employee_id"
)

const (
	RequestParamID         = "id"
	RequestParamDate       = "date"
	RequestParamYear       = "year"
	RequestParamMonth      = "month"
	RequestParamPeriod     = "period"
	RequestParamDepartment = "department"
)

const (
	DefaultValuePage       = 1
	DefaultValueLimit      = 50
	DefaultPerformanceDays = 30
	DefaultLeaderboardSize = 10
	MaxWindowDays          = 365
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
	ExportTimeFmt  = "2006-01-02 15:04:05"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderDisposition        = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	TopicSaleRecorded     = "sale.recorded"
	TopicGuestCheckedIn   = "guest.checked_in"
	TopicGuestCheckedOut  = "guest.checked_out"
	CacheKeyRevokedToken  = "auth:revoked"
	CacheKeyRateLimit     = "limiter"
	ExportArchiveDir      = "exports"
	ExportFormatExcel     = "excel"
	ExportFormatPDF       = "pdf"
	DefaultExportFormat   = ExportFormatExcel
	PeriodWeek            = "week"
	PeriodMonth           = "month"
	PeriodQuarter         = "quarter"
	PeriodYear            = "year"
	DaysInWeek            = 7
	DaysInMonthWindow     = 30
	DaysInQuarterWindow   = 90
	DaysInYearWindow      = 365
	MonthsInYear          = 12
	PercentageMultiplier  = 100
	DecimalPlacesCurrency = 2
)

const (
	Asterix = "*"
	Empty   = ""
)
