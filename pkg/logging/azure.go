package logging

import (
	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/sirupsen/logrus"
)

// ForwardAzureSDKLogs routes the Azure SDK pipeline log (requests, responses, retries and
// long running operation polls) to logger at debug level.
func ForwardAzureSDKLogs(logger *logrus.Entry) {
	azlog.SetEvents(azlog.EventRequest, azlog.EventResponse, azlog.EventRetryPolicy, azlog.EventLRO)
	azlog.SetListener(func(event azlog.Event, msg string) {
		logger.WithField("sdkEvent", string(event)).Debug(msg)
	})
}
