package knowledge

// Seeds returns the base banking knowledge set loaded on first rebuild
// of an empty collection.
func Seeds() []Document {
	return []Document{
		{
			Content:  "储蓄账户是银行为客户提供的最基本账户类型，可以进行存取款、转账等操作。储蓄账户通常没有最低余额要求，适合日常资金管理。",
			Category: "账户管理",
			Keywords: []string{"储蓄账户", "存取款", "转账", "基本账户"},
		},
		{
			Content:  "转账是银行客户之间进行资金转移的服务。可以通过网银、手机银行或柜台进行转账。转账时需要提供收款人姓名、账号和开户行信息。",
			Category: "转账服务",
			Keywords: []string{"转账", "资金转移", "网银", "手机银行", "收款人"},
		},
		{
			Content:  "理财产品是银行为客户提供的投资产品，包括货币基金、债券基金、股票基金等。投资有风险，需要根据个人风险承受能力选择适合的产品。",
			Category: "理财产品",
			Keywords: []string{"理财产品", "投资", "基金", "风险", "收益"},
		},
		{
			Content:  "理财产品类型与适配：货币基金流动性高、风险低，适合短期闲置资金；债券基金风险适中，适合稳健型投资者；股票基金波动较大，适合风险承受能力较强的投资者。购买前需完成风险测评。",
			Category: "理财产品",
			Keywords: []string{"理财产品类型与适配", "货币基金", "债券基金", "股票基金", "风险测评"},
		},
		{
			Content:  "个人消费贷款是银行向个人发放的用于消费用途的贷款。申请条件包括稳定收入、良好信用记录等。贷款额度根据个人资质确定。",
			Category: "贷款服务",
			Keywords: []string{"消费贷款", "个人贷款", "申请条件", "收入", "信用记录"},
		},
		{
			Content:  "信用卡是银行为客户提供的先消费后还款的支付工具。信用卡具有透支功能，可以在信用额度内进行消费或取现。",
			Category: "信用卡",
			Keywords: []string{"信用卡", "透支", "消费", "取现", "信用额度"},
		},
		{
			Content:  "银行卡安全使用指南：1. 不要将银行卡和身份证放在一起 2. 定期更换密码 3. 不要在公共场所透露银行卡信息 4. 及时挂失丢失的银行卡",
			Category: "安全指南",
			Keywords: []string{"银行卡", "安全", "密码", "身份证", "挂失"},
		},
		{
			Content:  "银行服务时间：柜台服务一般为工作日9:00-17:00，周末部分网点营业。ATM机24小时服务。网银和手机银行全天候服务。",
			Category: "服务时间",
			Keywords: []string{"服务时间", "柜台", "ATM", "网银", "手机银行", "营业时间"},
		},
		{
			Content:  "利息计算：储蓄存款按年利率计算，活期存款按日计息，定期存款按存期计息。贷款利率按年利率计算，分为固定利率和浮动利率。",
			Category: "利息计算",
			Keywords: []string{"利息", "年利率", "活期", "定期", "贷款利率", "固定利率", "浮动利率"},
		},
	}
}
