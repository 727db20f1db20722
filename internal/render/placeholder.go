package render

// Placeholder is the symbolic name of a template slot.
type Placeholder string

const (
	WorkingDir        Placeholder = "workingDir"
	AppExternalPort   Placeholder = "appExternalPort"
	MysqlExternalPort Placeholder = "mysqlExternalPort"
	MysqlDatabase     Placeholder = "mysqlDatabase"
	MysqlRootPassword Placeholder = "mysqlRootPassword"
	DBName            Placeholder = "dbName"
	MysqlPassword     Placeholder = "mysqlPassword"
)

// Token returns the literal text that stands for p inside a template.
func (p Placeholder) Token() string {
	return "{! " + string(p) + " !}"
}

// Binding pairs a placeholder with its run-specific value.
type Binding struct {
	Placeholder Placeholder
	Value       string
}
