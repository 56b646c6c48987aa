package constants

const (
	ChainName  = "dascoin"
	CoinSymbol = "DAS"

	// 10^5 satoshis per whole DAS, the core asset of the chain
	AssetPrecision = 100000
	CoreAssetId    = 0

	PERCENT = 10000 // cuts and percentages are expressed in basis points

	MinAccountNameLength = 3
	MaxAccountNameLength = 63

	// reserved account ids, fixed at genesis
	NullAccountId        = 3
	TempAccountId        = 4
	ProxyToSelfAccountId = 5

	// first id handed out to a registered account
	FirstAvailableAccountId = 6

	// recursion bound when walking nested account authorities
	MaxSigCheckDepth = 2

	MaxTransactionSize = 1024 * 256

	NoticeOpPre      = "oppre"
	NoticeOpPost     = "oppost"
	NoticeTrxPre     = "trxpre"
	NoticeTrxPost    = "trxpost"
	NoticeTrxApplied = "trxapplyresult"

	// rotating bloom pair used by the duplicate transaction guard
	DupFilterBitSize   = 1 << 21
	DupFilterHashCount = 7
	DupFilterCapacity  = 100000

	AccountCacheSize = 8192

	GenesisTime = 1546300800 // 2019-01-01 00:00:00 UTC

	// core asset satoshis credited to the root account at genesis
	GenesisInitSupply = 8589000000 * AssetPrecision

	GenesisRootAccount         = "dascoin"
	GenesisRegistrarAccount    = "registrar"
	GenesisLicenseAdminAccount = "license-admin"

	GenesisRootPubKey         = "DAS6a7NbqLw3maMB4AP2jjhyYLEWVnTm4TEZYXGAf9C8Nk58sqnG2"
	GenesisRegistrarPubKey    = "DAS5W6o7rHErq6bAYpqYXg57PBSsRogpgWuwaseQQ4u4j2aDvgQZG"
	GenesisLicenseAdminPubKey = "DAS6hJ4yEnp7nrwBybDPqxMM49LkNARppJYiLNctBQKaHtMj5GrWJ"
)
