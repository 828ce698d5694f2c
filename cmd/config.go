package cmd

type Config struct {
	HTTPPort                  string
	DBHost                    string
	DBPort                    string
	DBUser                    string
	DBPassword                string
	DBName                    string
	DBSslMode                 string
	KafkaHost                 string
	KafkaOrderChangedTopic    string
	MailRelayURL              string
	IdentityServiceURL        string
	FactoryGroupEmail         string
	AllowCustomerCancellation string
	DispatchBatchSize         string
	DispatchMaxAttempts       string
}
