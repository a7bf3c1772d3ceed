package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type WishPayContext string

const (
	DBContextURL WishPayContext = "wishpay-backend-url"
)

// Supported values for the database driver.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Connect opens the SQLite database at dsn and configures the connection pool.
func Connect(dsn string) error {
	return ConnectDriver(DriverSQLite, dsn)
}

// ConnectDriver opens the database with the given driver, migrates it and
// sets the exported DB variable.
func ConnectDriver(driver, dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var db *gorm.DB
	var err error

	switch driver {
	case DriverSQLite:
		db, err = connectSQLite(dsn, config)
	case DriverMySQL:
		db, err = connectServer(mysql.Open(dsn), config)
	case DriverPostgres:
		db, err = connectServer(postgres.Open(dsn), config)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	if err != nil {
		return err
	}

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

func connectSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func connectServer(dialector gorm.Dialector, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	err := db.Callback().Query().After("*").Register("wishpay:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("wishpay:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("wishpay:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("wishpay:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("wishpay:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("wishpay:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("wishpay:after_delete_general", generalCallback)
}

var pluralIes = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name is the type of resource, "bank_accounts" is
		// reported as "bank account"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIes.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: users.email"):
		db.Error = ErrUserEmailNotUnique
	case strings.Contains(msg, "CHECK constraint failed: user_balance_not_negative"),
		strings.Contains(msg, "CHECK constraint failed: bank_account_balance_not_negative"):
		db.Error = ErrBalanceNegative
	case strings.Contains(msg, "CHECK constraint failed: item_price_positive"):
		db.Error = ErrItemPriceNotPositive
	case strings.Contains(msg, "CHECK constraint failed: item_saved_within_price"):
		db.Error = ErrItemSavedOutOfRange
	case strings.Contains(msg, "CHECK constraint failed: transaction_amount_positive"):
		db.Error = ErrTransactionAmountNotPositive
	}
}

// generalCallback handles unspecified errors.
func generalCallback(db *gorm.DB) {
	db.Error = GeneralError(db.Error)
}

// GeneralError replaces errors we cannot provide the user with a helpful
// message for. The original error is logged and a general message is
// returned instead.
func GeneralError(err error) error {
	if err == nil {
		return nil
	}

	// "sql: database is closed" is hard-coded in the sql module
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(User{}, BankAccount{}, Item{}, Transaction{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
