package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finlabs/retail-banking-core/internal/account"
	"github.com/finlabs/retail-banking-core/internal/bank"
	"github.com/finlabs/retail-banking-core/internal/config"
	"github.com/finlabs/retail-banking-core/internal/customer"
	"github.com/finlabs/retail-banking-core/internal/events/kafka"
	"github.com/finlabs/retail-banking-core/internal/idgen"
	"github.com/finlabs/retail-banking-core/internal/interfaces"
	"github.com/finlabs/retail-banking-core/internal/loan"
	"github.com/finlabs/retail-banking-core/internal/logging"
	"github.com/finlabs/retail-banking-core/internal/metrics/prometheus"
	"github.com/finlabs/retail-banking-core/internal/models"
	"github.com/finlabs/retail-banking-core/internal/storage/memory"
	"github.com/finlabs/retail-banking-core/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var store interfaces.LedgerStore = memory.NewStore()
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("open database", zap.Error(err))
		}
		store = postgres.NewStore(db)
		log.Info("using postgres ledger archive")
	}

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		log.Info("publishing operation events to kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	collector := prometheus.NewCollector(promclient.DefaultRegisterer)

	b := bank.New(cfg.BankName)
	system := bank.NewSystem(b, store, bank.WithLogger(log), bank.WithMetrics(collector))
	issuer := idgen.NewUUIDIssuer()

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/customers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		c := customer.New(uuid.NewString(), req.Name, req.Email, issuer)
		b.AddCustomer(c)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"customer_id": c.ID()})
	})

	http.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			CustomerID   string          `json:"customer_id"`
			Kind         string          `json:"kind"`
			Opening      decimal.Decimal `json:"opening_balance"`
			InterestRate decimal.Decimal `json:"interest_rate"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		c, err := b.Customer(req.CustomerID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		number := uuid.NewString()
		opts := []account.Option{account.WithEvents(publisher)}
		if publisher == nil {
			opts = nil
		}

		var acct *account.Account
		switch account.Kind(req.Kind) {
		case account.KindSavings:
			sa, err := account.NewSavings(number, req.Opening, req.InterestRate, opts...)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			acct = sa.Account
		case account.KindChecking:
			ca, err := account.NewChecking(number, req.Opening, opts...)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			acct = ca.Account
		default:
			acct, err = account.New(number, req.Opening, opts...)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		b.RegisterAccount(acct)
		c.AddAccount(acct)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"account_number": acct.Number(),
			"kind":           string(acct.Kind()),
		})
	})

	http.HandleFunc("/accounts/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			http.Error(w, "account_id is a mandatory field", http.StatusBadRequest)
			return
		}

		balance, err := system.Balance(accountID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			AccountID string          `json:"account_id"`
			Balance   decimal.Decimal `json:"balance"`
		}{AccountID: accountID, Balance: balance})
	})

	http.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				Kind          string          `json:"kind"`
				SourceAccount string          `json:"source_account"`
				TargetAccount string          `json:"target_account"`
				Amount        decimal.Decimal `json:"amount"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}

			tx := models.Transaction{
				ID:            uuid.NewString(),
				Kind:          models.TxKind(req.Kind),
				SourceAccount: req.SourceAccount,
				TargetAccount: req.TargetAccount,
				Amount:        req.Amount,
			}
			if err := system.Process(r.Context(), tx); err != nil {
				http.Error(w, err.Error(), statusFor(err))
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"status":"processed"}`))

		case http.MethodGet:
			txs, err := system.Transactions()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(txs)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/ledgerEntries", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		entries, err := system.Entries()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	})

	http.HandleFunc("/loans", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			CustomerID   string          `json:"customer_id"`
			Amount       decimal.Decimal `json:"amount"`
			PeriodMonths int             `json:"period_months"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		c, err := b.Customer(req.CustomerID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		l := c.ApplyForLoan(req.Amount, req.PeriodMonths)
		log.Info("loan approved",
			zap.String("loan_id", l.ID()),
			zap.String("customer_id", c.ID()),
			zap.String("amount", l.Principal().String()))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(struct {
			LoanID           string          `json:"loan_id"`
			MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
			RemainingBalance decimal.Decimal `json:"remaining_balance"`
		}{LoanID: l.ID(), MonthlyRepayment: l.MonthlyRepayment(), RemainingBalance: l.Remaining()})
	})

	http.HandleFunc("/loans/repay", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			CustomerID string          `json:"customer_id"`
			LoanID     string          `json:"loan_id"`
			Amount     decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		c, err := b.Customer(req.CustomerID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		l, ok := c.Loan(req.LoanID)
		if !ok {
			http.Error(w, "loan not found", http.StatusNotFound)
			return
		}
		if err := l.Repay(req.Amount); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			LoanID           string          `json:"loan_id"`
			RemainingBalance decimal.Decimal `json:"remaining_balance"`
		}{LoanID: l.ID(), RemainingBalance: l.Remaining()})
	})

	http.Handle("/metrics", promhttp.Handler())

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("bank", b.Name()))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound), errors.Is(err, bank.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrInsufficientFunds), errors.Is(err, account.ErrAccountFrozen):
		return http.StatusConflict
	case errors.Is(err, loan.ErrInvalidRepayment):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
