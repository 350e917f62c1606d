package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/shiftpay-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/shiftpay-backend-go/internal/service/attendance"
	payrollService "github.com/cmlabs-hris/shiftpay-backend-go/internal/service/payroll"
	shiftService "github.com/cmlabs-hris/shiftpay-backend-go/internal/service/shift"
	userService "github.com/cmlabs-hris/shiftpay-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	lineRepo := postgresql.NewLineRepository(db)
	rewardPenaltyRepo := postgresql.NewRewardPenaltyRepository(db)
	statementRepo := postgresql.NewStatementRepository(db)
	transactor := postgresql.NewTransactor(db)

	if err := postgresql.SeedAdminUser(context.Background(), userRepo, cfg.App.SeedAdminEmail, cfg.App.SeedAdminPassword); err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	shiftCache := cache.New(5 * time.Minute)

	users := userService.NewUserService(userRepo, jwtService)
	shifts := shiftService.NewShiftService(shiftRepo, assignmentRepo, userRepo, transactor, shiftCache)
	attendances := attendanceService.NewAttendanceService(attendanceRepo, userRepo, shiftRepo)
	payrolls := payrollService.NewPayrollService(
		lineRepo,
		rewardPenaltyRepo,
		statementRepo,
		attendanceRepo,
		userRepo,
		shiftRepo,
		transactor,
		cfg.Payroll,
		nil,
	)

	userHandler := appHTTP.NewUserHandler(users)
	shiftHandler := appHTTP.NewShiftHandler(shifts)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendances)
	payrollHandler := appHTTP.NewPayrollHandler(payrolls)

	router := appHTTP.NewRouter(cfg, jwtService, userHandler, shiftHandler, attendanceHandler, payrollHandler)

	runner := cron.NewRunner()
	runner.AddJob("monthly-payroll-generation", time.Hour, func(ctx context.Context) error {
		return payrollService.GeneratePreviousMonth(ctx, payrolls, time.Now())
	})
	runner.Start()
	defer runner.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server shutdown failed: ", err)
	}
	log.Println("Server stopped")
}
